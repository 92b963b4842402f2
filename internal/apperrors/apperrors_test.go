package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RicardoPBJ/Vemynd-Store/internal/apperrors"
)

func TestBusinessError_Message(t *testing.T) {
	err := apperrors.NewDuplicateName("Já existe um produto com esse nome cadastrado.")

	assert.Equal(t, "Já existe um produto com esse nome cadastrado.", err.Error())
	assert.Equal(t, apperrors.KindDuplicateName, err.Kind)
}

func TestBusinessError_MatchableThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update failed: %w", apperrors.NewNotFound("Produto não encontrado."))

	var businessErr *apperrors.BusinessError
	assert.True(t, errors.As(wrapped, &businessErr))
	assert.Equal(t, apperrors.KindNotFound, businessErr.Kind)
}

func TestBusinessError_PlainErrorsDoNotMatch(t *testing.T) {
	var businessErr *apperrors.BusinessError
	assert.False(t, errors.As(errors.New("database error"), &businessErr))
}
