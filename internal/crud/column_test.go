package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cellItem struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Age            *int    `json:"age,omitempty"`
	MedicalHistory *string `json:"medicalHistory,omitempty"`
}

func (c cellItem) GetID() int { return c.ID }

func TestCellValueDefaultCoercion(t *testing.T) {
	age := 42
	item := cellItem{ID: 7, Name: "Ada", Age: &age}

	assert.Equal(t, "7", CellValue(item, Column[cellItem]{Key: "id"}))
	assert.Equal(t, "Ada", CellValue(item, Column[cellItem]{Key: "name"}))
	assert.Equal(t, "42", CellValue(item, Column[cellItem]{Key: "age"}))
}

func TestCellValueNilFieldsRenderEmpty(t *testing.T) {
	item := cellItem{ID: 1, Name: "Ada"}

	// A nil optional must render empty, never a "nil" literal
	assert.Equal(t, "", CellValue(item, Column[cellItem]{Key: "age"}))
	assert.Equal(t, "", CellValue(item, Column[cellItem]{Key: "medicalHistory"}))
	assert.Equal(t, "", CellValue(item, Column[cellItem]{Key: "noSuchField"}))
}

func TestCellValueRenderOverride(t *testing.T) {
	item := cellItem{ID: 1, Name: "Ada"}
	col := Column[cellItem]{
		Key:    "name",
		Render: func(c cellItem) string { return "Dr. " + c.Name },
	}
	assert.Equal(t, "Dr. Ada", CellValue(item, col))
}

func TestCellValueMatchesJSONTag(t *testing.T) {
	history := "fracture, 2019"
	item := cellItem{ID: 1, Name: "Ada", MedicalHistory: &history}
	assert.Equal(t, history, CellValue(item, Column[cellItem]{Key: "medicalHistory"}))
}
