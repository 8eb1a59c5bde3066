// Package blobstore define el colaborador de almacenamiento binario:
// upload por path y URL pública de lectura.
package blobstore

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("blob not found")

type Object struct {
	Key         string
	ContentType string
	Size        int64
}

type Store interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (Object, error)
	URL(ctx context.Context, key string) (string, error)
}
