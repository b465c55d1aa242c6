package collection

import (
	"context"
	"reflect"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	awsrequest "github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/storage/internal"
	"github.com/coinbase/treenode/internal/utils/log"
	"github.com/coinbase/treenode/internal/utils/retry"
)

type (
	ddbTable interface {
		WriteItem(ctx context.Context, item interface{}) error
		// TransactWriteItems guarantees all or nothing write for input items
		// but does have a size limit (maxWriteItemsSize).
		TransactWriteItems(ctx context.Context, request *TransactWriteItemsRequest) error
		GetItem(ctx context.Context, request *GetItemRequest) (interface{}, error)
	}

	// DynamoAPI for mock generation for testing purpose
	DynamoAPI = dynamodbiface.DynamoDBAPI

	ddbTableImpl struct {
		table  *tableDBAPI
		logger *zap.Logger
		retry  retry.Retry
	}

	GetItemRequest struct {
		KeyMap    StringMap
		EntryType reflect.Type
	}

	TransactWriteItemsRequest struct {
		TransactItems []*TransactItem
	}

	TransactItem struct {
		Put *TransactPutItem
	}

	TransactPutItem struct {
		Item interface{}
	}

	tableDBAPI struct {
		TableName string
		DBAPI     DynamoAPI
	}

	StringMap map[string]interface{}
)

const (
	partitionKeyName = "pk"
	sortKeyName      = "sk"

	maxWriteItemsSize = 25
)

var (
	awsStringType = aws.String("S")
	hashKeyType   = aws.String("HASH")
	rangeKeyType  = aws.String("RANGE")

	commonAttributeDefinitions = []*dynamodb.AttributeDefinition{
		{
			AttributeName: aws.String(partitionKeyName),
			AttributeType: awsStringType,
		},
		{
			AttributeName: aws.String(sortKeyName),
			AttributeType: awsStringType,
		},
	}
	commonKeySchema = []*dynamodb.KeySchemaElement{
		{
			AttributeName: aws.String(partitionKeyName),
			KeyType:       hashKeyType,
		},
		{
			AttributeName: aws.String(sortKeyName),
			KeyType:       rangeKeyType,
		},
	}
)

func newDDBTable(tableName string, params CollectionStorageParams) (ddbTable, error) {
	if params.EmptyTable != nil {
		return emptyDDBTable{}, nil
	}

	logger := log.WithPackage(params.Logger)
	itemRetry := retry.New(retry.WithLogger(logger))
	if params.DynamoAPI != nil {
		// Injected by tests.
		return &ddbTableImpl{
			table: &tableDBAPI{
				TableName: tableName,
				DBAPI:     params.DynamoAPI,
			},
			logger: logger,
			retry:  itemRetry,
		}, nil
	}

	awsTable := newTableAPI(tableName, params.Session)
	table := ddbTableImpl{
		table:  awsTable,
		logger: logger,
		retry:  itemRetry,
	}
	if params.Config.AWS.IsLocalStack {
		err := initLocalDB(awsTable.DBAPI, logger, tableName, params.Config.AWS.IsResetLocal)
		if err != nil {
			return nil, xerrors.Errorf("failed to prepare local table: %w", err)
		}
	}
	return &table, nil
}

func newTableAPI(tableName string, session *session.Session) *tableDBAPI {
	return &tableDBAPI{
		TableName: tableName,
		DBAPI:     dynamodb.New(session),
	}
}

func initLocalDB(api DynamoAPI, logger *zap.Logger, tableName string, reset bool) error {
	if reset {
		if _, err := api.DeleteTable(&dynamodb.DeleteTableInput{TableName: aws.String(tableName)}); err != nil {
			if aerr, ok := err.(awserr.Error); !ok || aerr.Code() != dynamodb.ErrCodeResourceNotFoundException {
				return xerrors.Errorf("failed to delete local table %v: %w", tableName, err)
			}
		}
	}

	_, err := api.CreateTable(&dynamodb.CreateTableInput{
		TableName:            aws.String(tableName),
		KeySchema:            commonKeySchema,
		AttributeDefinitions: commonAttributeDefinitions,
		BillingMode:          aws.String(dynamodb.BillingModePayPerRequest),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == dynamodb.ErrCodeResourceInUseException {
			return nil
		}
		return xerrors.Errorf("failed to create local table %v: %w", tableName, err)
	}

	logger.Info("created local table", zap.String("table", tableName))
	return nil
}

func (d *ddbTableImpl) WriteItem(ctx context.Context, item interface{}) error {
	mItem, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		return xerrors.Errorf("failed to marshal ddb entry (%v): %w", item, err)
	}
	_, err = d.table.DBAPI.PutItemWithContext(
		ctx,
		&dynamodb.PutItemInput{
			Item:      mItem,
			TableName: aws.String(d.table.TableName),
		},
	)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == awsrequest.CanceledErrorCode {
			return internal.ErrRequestCanceled
		}
		return xerrors.Errorf("failed to write item: %w", err)
	}
	return nil
}

func (d *ddbTableImpl) TransactWriteItems(ctx context.Context, request *TransactWriteItemsRequest) error {
	numItems := len(request.TransactItems)
	if numItems == 0 {
		return nil
	}

	if numItems > maxWriteItemsSize {
		return xerrors.Errorf("too many items: %v", numItems)
	}

	transactWriteItems := make([]*dynamodb.TransactWriteItem, numItems)
	for i, item := range request.TransactItems {
		if item.Put == nil {
			return xerrors.Errorf("invalid operation=%v", item)
		}

		marshaled, err := dynamodbattribute.MarshalMap(item.Put.Item)
		if err != nil {
			return xerrors.Errorf("failed to marshal ddb entry (%v): %w", item.Put.Item, err)
		}

		transactWriteItems[i] = &dynamodb.TransactWriteItem{
			Put: &dynamodb.Put{
				TableName: aws.String(d.table.TableName),
				Item:      marshaled,
			},
		}
	}

	_, err := d.table.DBAPI.TransactWriteItemsWithContext(
		ctx,
		&dynamodb.TransactWriteItemsInput{
			TransactItems: transactWriteItems,
		},
	)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == awsrequest.CanceledErrorCode {
			return internal.ErrRequestCanceled
		}
		return xerrors.Errorf("failed to transact write items: %w", err)
	}

	return nil
}

func (d *ddbTableImpl) GetItem(ctx context.Context, request *GetItemRequest) (interface{}, error) {
	dynamodbKey, err := dynamodbattribute.MarshalMap(request.KeyMap)
	if err != nil {
		return nil, xerrors.Errorf("could not marshal given key (%v): %w", request.KeyMap, err)
	}
	input := &dynamodb.GetItemInput{
		Key:            dynamodbKey,
		TableName:      aws.String(d.table.TableName),
		ConsistentRead: aws.Bool(true),
	}
	output, err := d.table.DBAPI.GetItemWithContext(ctx, input)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == awsrequest.CanceledErrorCode {
			return nil, internal.ErrRequestCanceled
		}
		return nil, xerrors.Errorf("failed to get item for key (%v): %w", request.KeyMap, err)
	}
	if output.Item == nil {
		return nil, internal.ErrItemNotFound
	}
	outputItem := reflect.New(request.EntryType).Interface()
	if err := dynamodbattribute.UnmarshalMap(output.Item, outputItem); err != nil {
		return nil, xerrors.Errorf("failed to unmarshal item (%v): %w", output.Item, err)
	}
	return outputItem, nil
}
