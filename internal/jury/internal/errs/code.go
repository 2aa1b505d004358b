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
	SystemError        = ErrorCode{Code: 523001, Msg: "系统错误"}
	InvalidInput       = ErrorCode{Code: 523002, Msg: "参数不合法"}
	InvalidSupportSide = ErrorCode{Code: 523003, Msg: "只能支持 person1 或 person2"}
	InvalidCommentSide = ErrorCode{Code: 523004, Msg: "立场只能是 person1、person2 或 neutral"}
	InvalidComment     = ErrorCode{Code: 523005, Msg: "评论内容需要在 5 到 500 个字之间"}
	VerdictNotFound    = ErrorCode{Code: 523006, Msg: "判决不存在"}
	DuplicateVote      = ErrorCode{Code: 523007, Msg: "您已经参与过这个案件的评判了"}
	MissFingerprint    = ErrorCode{Code: 523008, Msg: "缺少设备指纹"}
	NoAvailableCase    = ErrorCode{Code: 523009, Msg: "暂时没有可供评判的案例"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
