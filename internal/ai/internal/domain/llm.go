package domain

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
)

// 汪汪法庭的三个 AI 业务
const (
	BizCourtScoring   = "court_scoring"
	BizCourtVerdict   = "court_verdict"
	BizCourtLoveIndex = "court_love_index"
)

type LLMRequest struct {
	Biz string
	// 请求id
	Tid string
	// 用户的输入
	Input []string
	// 业务相关的配置
	Config BizConfig

	// prompt 将 input 和 PromptTemplate 结合之后生成的正儿八经的 Prompt
	prompt string
}

func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		args := slice.Map(req.Input, func(idx int, src string) any {
			return src
		})
		req.prompt = fmt.Sprintf(req.Config.PromptTemplate, args...)
	}
	return req.prompt
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Id  int64
	Biz string
	// 使用的模型
	Model string

	Temperature float64
	TopP        float64

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入
	// 这里我们不用计算 token，只需要简单约束一下字符串长度就可以
	MaxInput int
	// 单次回答的 token 上限，0 表示不限制
	MaxTokens int
	// 单次调用的超时时间，毫秒。0 用默认值
	Timeout int64
	// 提示词，一般使用 %s 占位
	PromptTemplate string
	Utime          int64
}

func (c BizConfig) TimeoutDuration() time.Duration {
	if c.Timeout <= 0 {
		// 默认 30s
		return time.Second * 30
	}
	return time.Duration(c.Timeout) * time.Millisecond
}

type LLMRecord struct {
	Id             int64
	Tid            string
	Biz            string
	Tokens         int64
	Input          []string
	Status         RecordStatus
	PromptTemplate string
	Answer         string
	Ctime          int64
	Utime          int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
