package models

import "time"

// Zikr представляет зикр (поминание) из каталога
type Zikr struct {
	ID                 int64     `json:"id"`
	Arabic             string    `json:"arabic"`             // текст на арабском
	Latin              string    `json:"latin"`              // транслитерация
	Identifier         string    `json:"identifier"`         // стабильный строковый ключ
	DefaultRepetitions int       `json:"defaultRepetitions"` // количество повторений по умолчанию
	IsCustom           bool      `json:"isCustom"`           // добавлен администратором, не из стандартного набора
	IsActive           bool      `json:"-"`                  // soft-delete флаг
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Language представляет поддерживаемый язык интерфейса
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	RTL        bool   `json:"rtl"`
}

// ProgressEntry представляет прогресс пользователя по одному зикру за день
type ProgressEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	ZikrID    int64     `json:"zikrId"`
	Date      string    `json:"date"` // день в формате YYYY-MM-DD
	Count     int       `json:"count"`
	Target    int       `json:"target"`
	UpdatedAt time.Time `json:"updatedAt"`
}
