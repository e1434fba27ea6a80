package models

type SyllabusCategory string

const (
	CategorySyllabus SyllabusCategory = "syllabus"
	CategoryNotes    SyllabusCategory = "notes"
)

// SyllabusFile is the metadata kept for every uploaded PDF.
type SyllabusFile struct {
	Filename   string           `json:"filename"`
	Course     string           `json:"course"`
	Semester   string           `json:"semester"`
	Category   SyllabusCategory `json:"category"`
	UploadedAt string           `json:"uploaded_at"`
}

type GalleryImage struct {
	Filename  string `json:"filename"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp,omitempty"`
}

// AdminAccount is the single admin login persisted next to the data dir.
type AdminAccount struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	SecretCode string `json:"secret_code"`
}
