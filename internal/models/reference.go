// internal/models/reference.go
package models

// District and Department are reference data: seeded once, looked up by id,
// never mutated by the workflow.
type District struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Code string `json:"code" gorm:"uniqueIndex;size:10;not null"`
}

type Department struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;size:150;not null"`
	Code string `json:"code" gorm:"uniqueIndex;size:10;not null"`
}
