package util

import (
	"strconv"
)

// ParseQuestionIndex 解析路径中的题目序号（1 起始），无法解析时返回 0，由调用方按越界处理
func ParseQuestionIndex(s string) int {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return idx
}
