package model

// Link запись таблицы links: маска, реальная ссылка и счётчик переходов
type Link struct {
	Mask   string `json:"mask"`
	Actual string `json:"actual"`
	Hits   int64  `json:"hits"`
}

// CreateRequest тело запроса на создание маски
type CreateRequest struct {
	Mask   string `json:"mask"`
	Actual string `json:"actual"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// LinkRecord запись файлового хранилища
type LinkRecord struct {
	UUID   string `json:"uuid"`
	Mask   string `json:"mask"`
	Actual string `json:"actual"`
	Hits   int64  `json:"hits"`
}
