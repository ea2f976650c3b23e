package entity

import (
	"fmt"
	"time"
)

// AuditEntry registro de una entrada de inventario (quién no importa: sistema monousuario).
type AuditEntry struct {
	At       time.Time
	Item     string
	Quantity int
}

// String formato de línea de auditoría: "<timestamp>: Added <qty> of <item>".
func (e AuditEntry) String() string {
	return fmt.Sprintf("%s: Added %d of %s", e.At.Format(time.RFC3339), e.Quantity, e.Item)
}
