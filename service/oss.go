package service

import (
	"context"
	"io"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"

	"notely/config"
)

type IOssService interface {
	UploadReader(ctx context.Context, key string, r io.Reader) error
	DownloadReader(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type OssService struct {
	client *oss.Client
	bucket string
}

func NewOssService(client *oss.Client, conf *config.OssConfig) IOssService {
	return &OssService{client: client, bucket: conf.Bucket}
}

func (s *OssService) UploadReader(ctx context.Context, key string, r io.Reader) error {
	_, err := s.client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(key),
		Body:   r,
	})
	return err
}

func (s *OssService) DownloadReader(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := s.client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

func (s *OssService) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(key),
	})
	return err
}
