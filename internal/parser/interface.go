// internal/parser/interface.go
package parser

import (
	"trail-comments/internal/models"
)

type ParserInterface interface {
	ParseCommentList(data []byte) ([]models.Comment, error)
	ParseComment(data []byte) (models.Comment, error)
}
