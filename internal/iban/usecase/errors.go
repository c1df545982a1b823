package usecase

import (
	"fmt"

	"github.com/allisson/ibancheck/internal/iban/domain"
)

type batchSizeError struct {
	size int
	max  int
}

func (e *batchSizeError) Error() string {
	return fmt.Sprintf("batch of %d inputs exceeds the maximum of %d", e.size, e.max)
}

func (e *batchSizeError) Unwrap() error { return domain.ErrBatchTooLarge }

func (e *batchSizeError) Code() string { return domain.CodeBatchTooLarge }
