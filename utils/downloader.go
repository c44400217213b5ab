package utils

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// TryDownloadBytesWithHeader try download bytes by url with extra request headers
func TryDownloadBytesWithHeader(url string, headers map[string]string, retry int, retryInterval time.Duration) (int, []byte, error) {
	var code int
	var buffer []byte
	var err error
	for index := 0; index < retry; index++ {
		code, buffer, err = tryDownloadBytesOnce(url, headers)
		if err == nil && code == http.StatusOK {
			return code, buffer, nil
		}

		if index < retry-1 {
			time.Sleep(retryInterval)
		}
	}

	return code, buffer, err
}

func tryDownloadBytesOnce(url string, headers map[string]string) (int, []byte, error) {
	request, err := http.NewRequest("GET", url, nil)
	if err != nil {
		zap.L().Warn("create http request failed", zap.Error(err), zap.String("url", url))
		return 0, nil, err
	}

	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return 0, nil, err
	}
	defer response.Body.Close()

	buffer, err := ioutil.ReadAll(response.Body)
	if err != nil {
		zap.L().Warn("read http response body failed", zap.Error(err), zap.String("url", url))
		return 0, nil, err
	}

	return response.StatusCode, buffer, nil
}

// PostJSON post request as json and decode response json into response.
// The url is never logged: bot api urls embed the token.
func PostJSON(url string, request, response interface{}) (int, error) {
	buffer, err := sonic.Marshal(request)
	if err != nil {
		zap.L().Error("marshal request body failed", zap.Error(err))
		return 0, err
	}

	resp, err := http.DefaultClient.Post(url, "application/json", bytes.NewReader(buffer))
	if err != nil {
		zap.L().Warn("post request failed", zap.Error(err))
		return 0, err
	}
	defer resp.Body.Close()

	buffer, err = ioutil.ReadAll(resp.Body)
	if err != nil {
		zap.L().Warn("read post response body failed", zap.Error(err))
		return resp.StatusCode, err
	}

	err = sonic.Unmarshal(buffer, response)
	if err != nil {
		zap.L().Warn("unmarshal post response failed", zap.Error(err), zap.ByteString("response", buffer))
		return resp.StatusCode, fmt.Errorf("unmarshal response: %w", err)
	}

	return resp.StatusCode, nil
}
