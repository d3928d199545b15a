package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

// Storage reads panchang dataset files. Year documents live either on local
// disk or in a Spaces bucket, depending on the deployment.
type Storage interface {
	ReadFile(path string) ([]byte, error)
	List(prefix string) ([]string, error)
}

type LocalStorage struct {
	dataDir string
}

type SpacesStorage struct {
	client *s3.S3
	bucket string
}

func NewLocalStorage(dataDir string) *LocalStorage {
	return &LocalStorage{dataDir: dataDir}
}

func NewSpacesStorage(endpoint, region, bucket, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client: s3.New(sess),
		bucket: bucket,
	}, nil
}

func (ls *LocalStorage) ReadFile(path string) ([]byte, error) {
	full := filepath.Join(ls.dataDir, filepath.Clean("/"+path))
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %q: %w", path, err)
	}
	return data, nil
}

func (ls *LocalStorage) List(prefix string) ([]string, error) {
	root := filepath.Join(ls.dataDir, filepath.Clean("/"+prefix))
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list dataset dir %q: %w", prefix, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.ToSlash(filepath.Join(prefix, e.Name())))
	}
	return paths, nil
}

func (ss *SpacesStorage) ReadFile(path string) ([]byte, error) {
	out, err := ss.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(strings.TrimPrefix(path, "/")),
	})
	if err != nil {
		log.Error().Err(err).Str("key", path).Msg("failed to fetch dataset file from Spaces")
		return nil, fmt.Errorf("failed to fetch %q from Spaces: %w", path, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q from Spaces: %w", path, err)
	}
	return data, nil
}

func (ss *SpacesStorage) List(prefix string) ([]string, error) {
	var keys []string
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(ss.bucket),
		Prefix: aws.String(strings.TrimPrefix(prefix, "/")),
	}
	err := ss.client.ListObjectsV2Pages(input, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, aws.StringValue(obj.Key))
		}
		return true
	})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to list dataset files in Spaces")
		return nil, fmt.Errorf("failed to list %q in Spaces: %w", prefix, err)
	}
	return keys, nil
}
