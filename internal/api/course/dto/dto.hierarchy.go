package coursedto

// LevelCreateInput entrada de creación de nivel.
type LevelCreateInput struct {
	CourseID    string `json:"courseId" validate:"required" transform:"str_objectid,map=CourseID"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// LevelUpdateInput entrada de actualización de nivel.
type LevelUpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       *int   `json:"order"`
}

// ModuleCreateInput entrada de creación de módulo.
type ModuleCreateInput struct {
	CourseID     string `json:"courseId" validate:"required" transform:"str_objectid,map=CourseID"`
	LevelID      string `json:"levelId" validate:"required" transform:"str_objectid,map=LevelID"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Order        int    `json:"order"`
	TotalClasses int    `json:"totalClasses"`
}

// ModuleUpdateInput entrada de actualización de módulo.
type ModuleUpdateInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Order        *int   `json:"order"`
	TotalClasses *int   `json:"totalClasses"`
}

// SectionCreateInput entrada de creación de sección.
type SectionCreateInput struct {
	CourseID string `json:"courseId" validate:"required" transform:"str_objectid,map=CourseID"`
	LevelID  string `json:"levelId" transform:"str_objectid,optional,map=LevelID"`
	ModuleID string `json:"moduleId" transform:"str_objectid,optional,map=ModuleID"`
	Name     string `json:"name" validate:"required"`
	Order    int    `json:"order"`
}

// SectionUpdateInput entrada de actualización de sección.
type SectionUpdateInput struct {
	Name  string `json:"name"`
	Order *int   `json:"order"`
}

// QuestionInput pregunta de quiz embebida.
type QuestionInput struct {
	QuestionTitle      string   `json:"questionTitle" validate:"required"`
	Options            []string `json:"options" validate:"required,min=2"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// LessonCreateInput entrada de creación de lección.
type LessonCreateInput struct {
	CourseID     string          `json:"courseId" validate:"required" transform:"str_objectid,map=CourseID"`
	LevelID      string          `json:"levelId" transform:"str_objectid,optional,map=LevelID"`
	ModuleID     string          `json:"moduleId" transform:"str_objectid,optional,map=ModuleID"`
	SectionID    string          `json:"sectionId" transform:"str_objectid,optional,map=SectionID"`
	Name         string          `json:"name" validate:"required"`
	Order        int             `json:"order"`
	ContentType  string          `json:"contentType" validate:"omitempty,oneof=video article quiz document youtube mixed"`
	Description  string          `json:"description"`
	VideoURL     string          `json:"videoUrl"`
	VimeoVideoID string          `json:"vimeoVideoId"`
	LessonBody   string          `json:"lessonBody"`
	Questions    []QuestionInput `json:"questions"`
	PDFLinks     []string        `json:"pdfLinks"`
	Duration     int             `json:"duration"`
	IsFree       bool            `json:"isFree"`
	ThumbnailURL string          `json:"thumbnailUrl"`
}

// LessonUpdateInput entrada de actualización de lección.
type LessonUpdateInput struct {
	Name         string          `json:"name"`
	Order        *int            `json:"order"`
	ContentType  string          `json:"contentType" validate:"omitempty,oneof=video article quiz document youtube mixed"`
	Description  string          `json:"description"`
	VideoURL     string          `json:"videoUrl"`
	VimeoVideoID string          `json:"vimeoVideoId"`
	LessonBody   string          `json:"lessonBody"`
	Questions    []QuestionInput `json:"questions"`
	PDFLinks     []string        `json:"pdfLinks"`
	Duration     *int            `json:"duration"`
	IsFree       *bool           `json:"isFree"`
	ThumbnailURL string          `json:"thumbnailUrl"`
}

// LessonMaterialCreateInput metadata de un material subido a una lección.
type LessonMaterialCreateInput struct {
	LessonID string `json:"lessonId" validate:"required" transform:"str_objectid,map=LessonID"`
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=word pdf text image video"`
	URL      string `json:"url" validate:"required"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

// LessonMaterialUpdateInput entrada de actualización de material.
type LessonMaterialUpdateInput struct {
	Name string `json:"name"`
	Type string `json:"type" validate:"omitempty,oneof=word pdf text image video"`
	URL  string `json:"url"`
}
