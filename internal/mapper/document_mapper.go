package mapper

import (
	"doc-wizard-be/internal/entity"
	"doc-wizard-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToModel(doc *entity.SavedDocument) *model.SavedDocument {
	return &model.SavedDocument{
		Id:          doc.Id,
		Title:       doc.Title,
		Description: doc.Description,
		Content:     doc.Content,
		Timestamp:   doc.Timestamp,
	}
}

func (m *DocumentMapper) ToEntity(doc *model.SavedDocument) *entity.SavedDocument {
	return &entity.SavedDocument{
		Id:          doc.Id,
		Title:       doc.Title,
		Description: doc.Description,
		Content:     doc.Content,
		Timestamp:   doc.Timestamp,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.SavedDocument) []*entity.SavedDocument {
	entities := make([]*entity.SavedDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
