package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-store/internal/domain"
	"github.com/jhoicas/inventario-store/internal/domain/entity"
	"github.com/jhoicas/inventario-store/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const indent = "    "

// InventoryRepo implementación del puerto InventoryRepository sobre un archivo JSON.
// El sistema de archivos se inyecta (afero.NewOsFs en producción, MemMapFs en tests).
type InventoryRepo struct {
	fs afero.Fs
}

// NewInventoryRepository construye el adaptador de persistencia JSON.
func NewInventoryRepository(fs afero.Fs) *InventoryRepo {
	return &InventoryRepo{fs: fs}
}

// Load lee el archivo y devuelve sus pares clave/valor en el orden en que aparecen.
func (r *InventoryRepo) Load(path string) ([]repository.RawEntry, error) {
	data, err := r.read(path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("parse %s: invalid JSON", path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrInvalidFormat)
	}

	entries := make([]repository.RawEntry, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		key, _ := keyTok.(string)
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("parse %s: key %q: %w", path, key, err)
		}
		entries = append(entries, repository.RawEntry{Key: key, Value: v})
	}
	return entries, nil
}

func (r *InventoryRepo) read(path string) ([]byte, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Save escribe el inventario como objeto JSON con sangría de 4 espacios, en el orden recibido.
func (r *InventoryRepo) Save(path string, items []entity.StockItem) (err error) {
	payload, err := encode(items)
	if err != nil {
		return fmt.Errorf("marshal inventory: %w", err)
	}

	f, err := r.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(payload); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// encode arma el objeto a mano para conservar el orden de inserción
// (encoding/json ordena las claves de un map).
func encode(items []entity.StockItem) ([]byte, error) {
	if len(items) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, it := range items {
		key, err := encodeKey(it.Name)
		if err != nil {
			return nil, err
		}
		buf.WriteString(indent)
		buf.Write(key)
		fmt.Fprintf(&buf, ": %d", it.Quantity)
		if i < len(items)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeKey serializa la clave sin escapar HTML ni caracteres no ASCII.
func encodeKey(name string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(name); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
