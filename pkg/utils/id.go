package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// LowerAlphanumeric serve para ids que vão parar em colunas sensíveis a caixa
	LowerAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

	RunIDLength = 10
)

// GenerateID gera o identificador curto de uma execução do relatório
func GenerateID() (string, error) {
	return GenerateIDFrom(alphanumeric, RunIDLength)
}

// GenerateIDFrom gera um id de tamanho size usando apenas os caracteres de alphabet
func GenerateIDFrom(alphabet string, size int) (string, error) {
	id, err := gonanoid.Generate(alphabet, size)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id: %w", err)
	}
	return id, nil
}
