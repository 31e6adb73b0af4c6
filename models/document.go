package models

import "time"

type Document struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	LeadID     *uint      `json:"lead_id"`
	BookingID  *uint      `json:"booking_id"`
	Type       string     `gorm:"size:50;not null" json:"type"`
	FileName   string     `gorm:"size:200;not null" json:"file_name"`
	FilePath   string     `gorm:"size:500;not null" json:"file_path"`
	FileSize   int64      `json:"file_size"`
	MimeType   string     `gorm:"size:100" json:"mime_type"`
	Generated  bool       `gorm:"default:false" json:"generated"`
	UploadedBy uint       `json:"uploaded_by"`
	Verified   bool       `gorm:"default:false" json:"verified"`
	VerifiedBy *uint      `json:"verified_by"`
	VerifiedAt *time.Time `json:"verified_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
