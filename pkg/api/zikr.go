package api

// ZikrRequest представляет тело создания/обновления зикра (admin)
type ZikrRequest struct {
	Arabic             string `json:"arabic"`
	Latin              string `json:"latin"`
	Identifier         string `json:"identifier"`
	DefaultRepetitions int    `json:"defaultRepetitions"`
}

// ProgressRequest представляет тело записи прогресса за день
type ProgressRequest struct {
	ZikrID int64  `json:"zikrId"`
	Date   string `json:"date,omitempty"` // YYYY-MM-DD, по умолчанию сегодня
	Count  int    `json:"count"`
	Target int    `json:"target,omitempty"`
}
