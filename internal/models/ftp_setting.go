package models

import "time"

const DefaultFTPPort = 21

// FTPSetting holds one FTP destination. The password is stored as entered.
type FTPSetting struct {
	ID        int64     `db:"id" json:"id"`
	Host      string    `db:"host" json:"host"`
	Port      int       `db:"port" json:"port"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
