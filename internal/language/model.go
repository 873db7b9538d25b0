package language

import "time"

// Language is a row of the languages table.
type Language struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	Flag      string    `db:"flag"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Touch marks the language as modified at now.
func (l *Language) Touch(now time.Time) {
	l.UpdatedAt = now
}

type LanguageDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Flag      string    `json:"flag"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LanguageInput is the body of create and update requests. Any id sent by
// the client is ignored.
type LanguageInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Code     string `json:"code" validate:"required,max=255"`
	Flag     string `json:"flag" validate:"max=255"`
	IsActive *bool  `json:"isActive"`
}

// apply overwrites the caller editable fields. An omitted isActive keeps the
// current value, which is true for a new language.
func (in LanguageInput) apply(l *Language) {
	l.Name = in.Name
	l.Code = in.Code
	l.Flag = in.Flag
	if in.IsActive != nil {
		l.IsActive = *in.IsActive
	}
}

func ToDTO(l *Language) LanguageDTO {
	return LanguageDTO{
		ID:        l.ID,
		Name:      l.Name,
		Code:      l.Code,
		Flag:      l.Flag,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// storageNow is the wall clock at the precision PostgreSQL keeps.
func storageNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
