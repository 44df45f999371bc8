package validators

import "fmt"

// Field name constants accepted by Validate.
const (
	FieldName                 = "nome"
	FieldEmail                = "email"
	FieldPhone                = "telefone"
	FieldPassword             = "senha"
	FieldPasswordConfirmation = "confirmarSenha"

	FieldTitle           = "titulo"
	FieldIngredients     = "ingredientes"
	FieldPreparation     = "modoPreparo"
	FieldPreparationTime = "tempoPreparo"
)

func invalid(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrValidation, field, err)
}
