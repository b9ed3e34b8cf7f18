package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound indica que ningún documento coincide con el identificador.
var ErrNotFound = errors.New("document not found")

// ErrStaleRead indica que la actualización se aplicó pero la relectura por id no encontró el documento.
var ErrStaleRead = errors.New("updated document not found by id")

// StorageError envuelve cualquier fallo del driver de Mongo.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
