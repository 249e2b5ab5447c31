package kafka

import (
	"fmt"
	"strconv"
)

// Canal 事件类型
const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// CanalMessage 定义了 Canal 推送到 Kafka 的 JSON 数据结构
type CanalMessage struct {
	ID       int64    `json:"id"`
	Database string   `json:"database"`
	Table    string   `json:"table"`
	PKNames  []string `json:"pkNames"`
	IsDDL    bool     `json:"isDdl"`
	Type     string   `json:"type"`
	ES       int64    `json:"es"`
	TS       int64    `json:"ts"`

	// Data 存储变更后的数据
	Data []map[string]interface{} `json:"data"`

	// Old 存储变更前被修改的字段
	Old []map[string]interface{} `json:"old"`
}

// Uint64Column 收集 Data 和 Old 中某列的全部非零取值，去重
func (m *CanalMessage) Uint64Column(column string) []uint64 {
	seen := make(map[uint64]struct{})
	res := make([]uint64, 0, len(m.Data))
	collect := func(rows []map[string]interface{}) {
		for _, row := range rows {
			v, ok := row[column]
			if !ok {
				continue
			}
			id := StrToUint64(v)
			if id == 0 {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			res = append(res, id)
		}
	}
	collect(m.Data)
	collect(m.Old)
	return res
}

// StrToUint64 Canal 的列值均为字符串，无法解析时返回 0
func StrToUint64(v interface{}) uint64 {
	switch val := v.(type) {
	case nil:
		return 0
	case string:
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case float64:
		if val < 0 {
			return 0
		}
		return uint64(val)
	default:
		n, err := strconv.ParseUint(fmt.Sprint(val), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
}
