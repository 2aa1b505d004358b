package errs

var (
	SystemError  = ErrorCode{Code: 521001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 521002, Msg: "双方姓名、事情经过和委屈诉求都不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
