package stores

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// S3 define aws s3 store, credentials come from the default chain
type S3 struct {
	client *s3.S3
	bucket string
	key    string
}

// NewS3FromArgument create s3 store from "{region}/{bucket}/{key}" argument
func NewS3FromArgument(arg string) (*S3, error) {
	parts := strings.SplitN(arg, "/", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, fmt.Errorf("s3 store arg invalid: %s", arg)
	}

	sess, err := session.NewSession(&aws.Config{
		Region:     aws.String(parts[0]),
		MaxRetries: aws.Int(2),
	})
	if err != nil {
		zap.L().Error("create aws session failed", zap.Error(err), zap.String("region", parts[0]))
		return nil, err
	}

	return &S3{
		client: s3.New(sess),
		bucket: parts[1],
		key:    parts[2],
	}, nil
}

// Load load state, missing object is a valid empty state
func (s S3) Load() (*State, error) {
	state := new(State)

	response, err := s.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		ae, ok := err.(awserr.Error)
		if ok && (ae.Code() == s3.ErrCodeNoSuchKey || ae.Code() == "NotFound") {
			return state, nil
		}

		zap.L().Error("get state object failed",
			zap.Error(err),
			zap.String("bucket", s.bucket),
			zap.String("key", s.key))
		return nil, err
	}
	defer response.Body.Close()

	buffer, err := ioutil.ReadAll(response.Body)
	if err != nil {
		zap.L().Error("read state object failed",
			zap.Error(err),
			zap.String("bucket", s.bucket),
			zap.String("key", s.key))
		return nil, err
	}

	err = sonic.Unmarshal(buffer, state)
	if err != nil {
		zap.L().Error("unmarshal state object failed",
			zap.Error(err),
			zap.String("bucket", s.bucket),
			zap.String("key", s.key),
			zap.ByteString("json", buffer))
		return nil, err
	}

	return state, nil
}

// Save save state, overwriting prior content
func (s S3) Save(state *State) error {
	buffer, err := sonic.Marshal(state)
	if err != nil {
		zap.L().Error("marshal state failed", zap.Error(err), zap.Any("state", state))
		return err
	}

	_, err = s.client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
		Body:   bytes.NewReader(buffer),
	})
	if err != nil {
		zap.L().Error("put state object failed",
			zap.Error(err),
			zap.String("bucket", s.bucket),
			zap.String("key", s.key))
		return err
	}

	return nil
}

// Close close store
func (s S3) Close() error {
	return nil
}
