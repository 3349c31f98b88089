package ddbDao

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// fakeDynamo satisfies dynamodbiface.DynamoDBAPI for the operations the DAOs
// use. Unset funcs panic through the embedded nil interface, which flags a DAO
// calling an operation its test did not expect.
type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	putItem              func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItem              func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem           func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query                func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	queryPages           func(*dynamodb.QueryInput, func(*dynamodb.QueryOutput, bool) bool) error
	scanPagesWithContext func(aws.Context, *dynamodb.ScanInput, func(*dynamodb.ScanOutput, bool) bool, ...request.Option) error
}

func (f *fakeDynamo) PutItem(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	return f.putItem(input)
}

func (f *fakeDynamo) GetItem(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	return f.getItem(input)
}

func (f *fakeDynamo) UpdateItem(input *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(input)
}

func (f *fakeDynamo) Query(input *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
	return f.query(input)
}

func (f *fakeDynamo) QueryPages(input *dynamodb.QueryInput, fn func(*dynamodb.QueryOutput, bool) bool) error {
	return f.queryPages(input, fn)
}

func (f *fakeDynamo) ScanPagesWithContext(ctx aws.Context, input *dynamodb.ScanInput, fn func(*dynamodb.ScanOutput, bool) bool, opts ...request.Option) error {
	return f.scanPagesWithContext(ctx, input, fn, opts...)
}

// expressionHasValue reports whether any expression attribute value carries
// the given string.
func expressionHasValue(values map[string]*dynamodb.AttributeValue, want string) bool {
	for _, value := range values {
		if value.S != nil && *value.S == want {
			return true
		}
	}
	return false
}
