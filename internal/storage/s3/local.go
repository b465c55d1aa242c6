package s3

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/utils/log"
)

func resetLocalResources(params S3Params) error {
	logger := log.WithPackage(params.Logger)
	bucket := params.Config.AWS.Bucket
	client := awss3.New(params.Session)

	if params.Config.AWS.IsResetLocal {
		if err := deleteLocalBucket(client, bucket); err != nil {
			return xerrors.Errorf("failed to delete local bucket %v: %w", bucket, err)
		}
	}

	if _, err := client.CreateBucket(&awss3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}); err != nil {
		if aerr, ok := err.(awserr.Error); !ok ||
			(aerr.Code() != awss3.ErrCodeBucketAlreadyOwnedByYou && aerr.Code() != awss3.ErrCodeBucketAlreadyExists) {
			return xerrors.Errorf("failed to create local bucket %v: %w", bucket, err)
		}
		return nil
	}

	logger.Info("created local bucket", zap.String("bucket", bucket))
	return nil
}

func deleteLocalBucket(client Client, bucket string) error {
	iter := s3manager.NewDeleteListIterator(client, &awss3.ListObjectsInput{
		Bucket: aws.String(bucket),
	})
	if err := s3manager.NewBatchDeleteWithClient(client).Delete(aws.BackgroundContext(), iter); err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == awss3.ErrCodeNoSuchBucket {
			return nil
		}
		return xerrors.Errorf("failed to empty bucket: %w", err)
	}

	if _, err := client.DeleteBucket(&awss3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	}); err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == awss3.ErrCodeNoSuchBucket {
			return nil
		}
		return xerrors.Errorf("failed to delete bucket: %w", err)
	}

	return nil
}
