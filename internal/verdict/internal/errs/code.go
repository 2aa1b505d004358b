// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errs

var (
	SystemError     = ErrorCode{Code: 522001, Msg: "系统错误"}
	InvalidInput    = ErrorCode{Code: 522002, Msg: "案件内容或判决结果不完整"}
	InvalidVoteType = ErrorCode{Code: 522003, Msg: "不支持的投票类型"}
	VerdictNotFound = ErrorCode{Code: 522004, Msg: "判决不存在"}
	DuplicateVote   = ErrorCode{Code: 522005, Msg: "您已经对此判决投过票了"}
	VoteNotFound    = ErrorCode{Code: 522006, Msg: "您还没有投票，无法撤回"}
	NoAvailableCase = ErrorCode{Code: 522007, Msg: "暂时没有可供评判的案例"}
	MissFingerprint = ErrorCode{Code: 522008, Msg: "缺少设备指纹"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
