package services

import (
	"fmt"
	"io"
	"mime/multipart"
)

// UploadService gives access to an uploaded document. Nothing is written to
// disk; the part is streamed straight to the parser.
type UploadService interface {
	Open(file *multipart.FileHeader) (io.ReadCloser, error)
	MaxFileSize() int64
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

func (s *uploadService) MaxFileSize() int64 {
	return s.maxFileSize
}

// Open rejects parts above the size limit and returns a reader that cannot
// read past it, whatever the declared size.
func (s *uploadService) Open(file *multipart.FileHeader) (io.ReadCloser, error) {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	if s.maxFileSize <= 0 {
		return src, nil
	}

	return &limitedFile{
		Reader: io.LimitReader(src, s.maxFileSize),
		Closer: src,
	}, nil
}

type limitedFile struct {
	io.Reader
	io.Closer
}
