package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Dataset holds everything the Architect stage needs to author a scenario:
// besides name and source URL, the lecturer records a metadata summary, the
// column names, a few sample rows and known data-quality issues.
type Dataset struct {
	ID               string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name             string         `json:"name" gorm:"not null"`
	URL              string         `json:"url" gorm:"not null"`
	MetadataSummary  string         `json:"metadata_summary,omitempty"`
	ColumnsList      datatypes.JSON `json:"columns_list,omitempty" gorm:"type:jsonb"`
	SampleData       string         `json:"sample_data,omitempty" gorm:"type:text"`
	DataQualityNotes string         `json:"data_quality_notes,omitempty" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (d *Dataset) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// Columns decodes the stored column-name list. A missing or malformed list
// comes back empty; the Architect prompt handles that case explicitly.
func (d *Dataset) Columns() []string {
	if len(d.ColumnsList) == 0 {
		return nil
	}
	var cols []string
	if err := json.Unmarshal(d.ColumnsList, &cols); err != nil {
		return nil
	}
	return cols
}

// SetColumns encodes a column-name list into the JSON column.
func (d *Dataset) SetColumns(cols []string) error {
	if cols == nil {
		d.ColumnsList = nil
		return nil
	}
	raw, err := json.Marshal(cols)
	if err != nil {
		return err
	}
	d.ColumnsList = datatypes.JSON(raw)
	return nil
}
