package model

import "time"

// SavedContact is a user's personal address-book entry for a BusinessCard.
// Created by the engagement save action; custom fields are edited through
// the client sync path.
type SavedContact struct {
	UserId     string `dynamodbav:"userId" validate:"required"` // partition key
	BusinessId string `dynamodbav:"businessId" validate:"required"` // sort key

	CustomName    string   `dynamodbav:"customName,omitempty"`
	Tags          []string `dynamodbav:"tags,omitempty"`
	PersonalNotes string   `dynamodbav:"personalNotes,omitempty"`

	ReminderDate  *time.Time `dynamodbav:"reminderDate,omitempty,unixtime"`
	ReminderLabel string     `dynamodbav:"reminderLabel,omitempty"`

	LastSyncedAt time.Time `dynamodbav:"lastSyncedAt,unixtime"`
}
