package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// 小工具：为初始教师账号生成 bcrypt 哈希，用于手工插入种子数据。
// 用法: go run hash_gen.go [password]，缺省密码为 12345
func main() {
	password := "12345"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("Hashed Password: %s\n", string(hashedPassword))
}

// INSERT INTO users (name, email, password_hash, role, is_active, created_date)
// VALUES ('Admin Teacher', 'teacher@school.local', '<hash>', 'Teacher', 1, strftime('%Y-%m-%d %H:%M:%S', 'now'));
