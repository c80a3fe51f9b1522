package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storage folders within the bucket.
const (
	StorageFolderMedia        = "submission-media"
	StorageFolderCertificates = "certificates"
)

func newS3Client() (*s3.S3, string, string, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")
	bucketName := os.Getenv("S3_BUCKET")

	if accessKey == "" || secretKey == "" || region == "" || bucketName == "" {
		return nil, "", "", fmt.Errorf("storage not configured (AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY/AWS_REGION/S3_BUCKET)")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to create AWS session: %v", err)
	}

	return s3.New(sess), bucketName, region, nil
}

// UploadToStorage puts a blob under folder/fileName in the configured bucket
// and returns its publicly resolvable URL.
func UploadToStorage(reader io.Reader, folder, fileName, contentType string) (string, error) {
	svc, bucketName, region, err := newS3Client()
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("failed to read file buffer: %v", err)
	}

	key := folder + "/" + fileName
	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	}

	if _, err := svc.PutObject(input); err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, region, key)
	return url, nil
}

// DeleteFromStorage removes a previously uploaded blob by its public URL.
func DeleteFromStorage(fileURL string) error {
	svc, bucketName, region, err := newS3Client()
	if err != nil {
		return err
	}

	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", bucketName, region)
	key := strings.TrimPrefix(fileURL, prefix)
	if key == fileURL {
		return fmt.Errorf("file URL does not belong to the configured bucket: %s", fileURL)
	}

	_, err = svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %v", err)
	}

	return nil
}
