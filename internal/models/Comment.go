package models

import (
	"strings"

	"gorm.io/gorm"
)

type CommentType string

const (
	CommentPraise    CommentType = "praise"
	CommentComplaint CommentType = "complaint"
	CommentNeutral   CommentType = "neutral"
)

// ParseCommentType maps an input string to a known comment type, defaulting
// to neutral.
func ParseCommentType(input string) CommentType {
	switch CommentType(strings.ToLower(strings.TrimSpace(input))) {
	case CommentPraise:
		return CommentPraise
	case CommentComplaint:
		return CommentComplaint
	default:
		return CommentNeutral
	}
}

type Comment struct {
	gorm.Model
	OrderID     uint        `json:"order_id" gorm:"index"`
	UserID      uint        `json:"user_id" gorm:"index"`
	User        User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CommentText string      `json:"comment_text"`
	CommentType CommentType `json:"comment_type" gorm:"type:varchar(20)"`
	Rating      *int        `json:"rating,omitempty"`
}
