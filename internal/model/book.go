package model

import "time"

type Book struct {
	UID           string    `db:"uid" json:"uid"`
	Title         string    `db:"title" json:"title"`
	Author        string    `db:"author" json:"author"`
	Publisher     string    `db:"publisher" json:"publisher"`
	PublishedDate time.Time `db:"published_date" json:"published_date"`
	PageCount     int       `db:"page_count" json:"page_count"`
	Language      string    `db:"language" json:"language"`
	UserUID       string    `db:"user_uid" json:"user_uid"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
