package inventory

import "github.com/jhoicas/inventario-store/internal/domain/entity"

// AuditLog buffer opcional de auditoría de entradas, propiedad del llamador.
// El valor cero está listo para usarse.
type AuditLog struct {
	entries []entity.AuditEntry
}

func (a *AuditLog) append(e entity.AuditEntry) {
	a.entries = append(a.entries, e)
}

// Entries devuelve una copia de las entradas registradas.
func (a *AuditLog) Entries() []entity.AuditEntry {
	out := make([]entity.AuditEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Lines devuelve las entradas formateadas ("<timestamp>: Added <qty> of <item>").
func (a *AuditLog) Lines() []string {
	lines := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		lines = append(lines, e.String())
	}
	return lines
}

// Len número de entradas.
func (a *AuditLog) Len() int {
	return len(a.entries)
}
