package ddbDao

import (
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/logger"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
)

func TestGetSavedContact_NotFound(t *testing.T) {
	client := &fakeDynamo{
		getItem: func(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	dao := NewSavedContactDao(client, logger.NewLogger())

	contact, err := dao.GetSavedContact("user-1", "biz-1")
	if err != nil {
		t.Fatalf("Expected no error for an absent contact, but got %v", err)
	}
	if contact != nil {
		t.Errorf("Expected nil for an absent contact, but got %+v", contact)
	}
}

func TestGetSavedContact_Found(t *testing.T) {
	stored := model.SavedContact{
		UserId:        "user-1",
		BusinessId:    "biz-1",
		CustomName:    "Ravi the plumber",
		Tags:          []string{"home"},
		PersonalNotes: "Fixed the kitchen leak",
		LastSyncedAt:  time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
	item, err := dynamodbattribute.MarshalMap(stored)
	if err != nil {
		t.Fatalf("Unable to marshal saved contact: %v", err)
	}

	var capturedKey map[string]*dynamodb.AttributeValue
	client := &fakeDynamo{
		getItem: func(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			capturedKey = input.Key
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}
	dao := NewSavedContactDao(client, logger.NewLogger())

	contact, err := dao.GetSavedContact("user-1", "biz-1")
	if err != nil {
		t.Fatalf("Expected lookup to succeed, but got %v", err)
	}
	if contact == nil {
		t.Fatal("Expected a contact, but got nil")
	}
	if contact.CustomName != "Ravi the plumber" {
		t.Errorf("Expected Ravi the plumber, but got %s", contact.CustomName)
	}
	if *capturedKey["userId"].S != "user-1" || *capturedKey["businessId"].S != "biz-1" {
		t.Errorf("Expected the composite key (user-1, biz-1), but got %v", capturedKey)
	}
}

func TestSaveContact_RepeatSaveRefreshesSyncTimeOnly(t *testing.T) {
	var capturedUpdate *dynamodb.UpdateItemInput
	client := &fakeDynamo{
		putItem: func(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, awserr.New(dynamodb.ErrCodeConditionalCheckFailedException, "conditional check failed", nil)
		},
		updateItem: func(input *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			capturedUpdate = input
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}
	dao := NewSavedContactDao(client, logger.NewLogger())

	err := dao.SaveContact(model.SavedContact{
		UserId:       "user-1",
		BusinessId:   "biz-1",
		LastSyncedAt: time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected a repeat save to succeed, but got %v", err)
	}
	if capturedUpdate == nil {
		t.Fatal("Expected a repeat save to fall back to an update, but none was issued")
	}

	// The update must not rewrite the whole item, or it would wipe the custom
	// name, tags and notes the user edited after the first save.
	touched := make([]string, 0, len(capturedUpdate.ExpressionAttributeNames))
	for _, name := range capturedUpdate.ExpressionAttributeNames {
		touched = append(touched, *name)
	}
	if len(touched) != 1 || touched[0] != "lastSyncedAt" {
		t.Errorf("Expected only lastSyncedAt to be touched, but got %s", strings.Join(touched, ", "))
	}
}

func TestSaveContact_FirstSaveIsConditional(t *testing.T) {
	var captured *dynamodb.PutItemInput
	client := &fakeDynamo{
		putItem: func(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			captured = input
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	dao := NewSavedContactDao(client, logger.NewLogger())

	err := dao.SaveContact(model.SavedContact{
		UserId:       "user-1",
		BusinessId:   "biz-1",
		LastSyncedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Expected first save to succeed, but got %v", err)
	}
	if captured.ConditionExpression == nil || *captured.ConditionExpression != SavedContactKeyNotExistsConditionExpression {
		t.Errorf("Expected the insert to guard on key absence, but got %v", captured.ConditionExpression)
	}
}
