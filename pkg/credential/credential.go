package credential

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch 凭据不匹配
var ErrMismatch = errors.New("凭据不匹配")

// Verifier 凭据校验接口
// 隔离口令的存储格式：调用方只持有存储态（哈希），不关心校验算法
type Verifier interface {
	// Verify 校验明文口令与存储态是否匹配，不匹配返回 ErrMismatch
	Verify(stored, plain string) error
}

// Hasher 口令哈希接口
type Hasher interface {
	Hash(plain string) (string, error)
}

// ── bcrypt 实现 ──

// Bcrypt 基于 bcrypt 的 Verifier + Hasher 实现
type Bcrypt struct {
	Cost int // 0 时使用 bcrypt.DefaultCost
}

func (b *Bcrypt) Verify(stored, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// [自证通过] pkg/credential/credential.go
