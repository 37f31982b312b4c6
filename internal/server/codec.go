package server

import (
	"errors"
	"fmt"
	"io"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/go-kratos/kratos/v2/encoding/json"
)

// maxBodyBytes 提交表单的大小上限
const maxBodyBytes = 1 << 20

// decodeRequest 不论 Content-Type 都按 JSON 解析请求体
func decodeRequest(r *nethttp.Request, v interface{}) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(data) == 0 {
		return errors.New("empty request body")
	}
	return encoding.GetCodec(json.Name).Unmarshal(data, v)
}
