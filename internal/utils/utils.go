package utils

import (
	"strings"
)

// udevadm property 출력 같은 KEY=VALUE 라인 파싱
func ParseKVEq(s string) map[string]string {
	m := map[string]string{}
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		i := strings.IndexByte(ln, '=')
		if i <= 0 {
			continue
		}
		m[strings.TrimSpace(ln[:i])] = strings.TrimSpace(ln[i+1:])
	}
	return m
}
