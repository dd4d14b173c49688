package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func readLine(r *bufio.Reader) string {
	s, _ := r.ReadString('\n')
	return strings.TrimSpace(s)
}

func fatal(fmtStr string, a ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+fmtStr+"\n", a...)
	os.Exit(1)
}

func must(err error) {
	if err != nil {
		fatal("%v", err)
	}
}

// 번호 선택. 유효한 번호가 나올 때까지 무한 재질문 (유일한 복구 가능 에러).
func promptIndex(r *bufio.Reader, n int) int {
	for {
		fmt.Print("Enter number [0]: ")
		sel := readLine(r)
		if sel == "" {
			return 0
		}
		idx, err := strconv.Atoi(sel)
		if err != nil || idx < 0 || idx >= n {
			fmt.Println("invalid index, try again")
			continue
		}
		return idx
	}
}

func confirmErase(dev string) error {
	fmt.Printf("!!! ALL DATA ON %s WILL BE ERASED. Continue? [yes/NO] ", dev)
	var s string
	if _, err := fmt.Scanln(&s); err != nil {
		return fmt.Errorf("aborted")
	}
	if strings.TrimSpace(s) != "yes" {
		return fmt.Errorf("aborted")
	}
	return nil
}
