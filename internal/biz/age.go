package biz

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ComputeAge 按周岁计算年龄，出生日期无法解析时返回 0
func ComputeAge(dob string) int {
	return AgeAt(dob, time.Now())
}

// AgeAt 计算在 now 这一天的周岁，结果不小于 0
func AgeAt(dob string, now time.Time) (age int) {
	defer func() {
		if r := recover(); r != nil {
			age = 0
		}
	}()

	dob = strings.TrimSpace(dob)
	if dob == "" {
		return 0
	}
	birth, err := dateparse.ParseAny(dob)
	if err != nil {
		return 0
	}

	age = now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
