package model

import "time"

type Review struct {
	UID        string    `db:"uid" json:"uid"`
	Rating     int       `db:"rating" json:"rating"`
	ReviewText string    `db:"review_text" json:"review_text"`
	UserUID    string    `db:"user_uid" json:"user_uid"`
	BookUID    string    `db:"book_uid" json:"book_uid"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
