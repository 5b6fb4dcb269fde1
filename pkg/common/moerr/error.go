// Copyright 2024 QuartzDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"fmt"
)

const (
	// 0 - 99 is OK.  They do not contain info, and are special handled
	// using a static instance, no alloc.
	Ok uint16 = 0

	OkMax uint16 = 99

	// Group 1: Internal errors
	ErrStart    uint16 = 20100
	ErrInternal uint16 = 20101
	ErrNYI      uint16 = 20102
	ErrOOM      uint16 = 20103

	// Group 2: numeric
	ErrDivByZero  uint16 = 20200
	ErrOutOfRange uint16 = 20201

	// Group 3: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301
	ErrInvalidArg   uint16 = 20303

	// Group 4: unexpected state
	ErrInvalidState uint16 = 20400

	ErrEnd uint16 = 65535
)

type moErrorMsgItem struct {
	errorCode     uint16
	errorMsgOrFmt string
}

var errorMsgRefer = map[uint16]moErrorMsgItem{
	Ok:              {Ok, "ok"},
	ErrInternal:     {ErrInternal, "internal error: %s"},
	ErrNYI:          {ErrNYI, "%s is not yet implemented"},
	ErrOOM:          {ErrOOM, "out of memory"},
	ErrDivByZero:    {ErrDivByZero, "division by zero"},
	ErrOutOfRange:   {ErrOutOfRange, "data out of range: %s"},
	ErrBadConfig:    {ErrBadConfig, "invalid configuration: %s"},
	ErrInvalidInput: {ErrInvalidInput, "invalid input: %s"},
	ErrInvalidArg:   {ErrInvalidArg, "invalid argument %s, bad value %s"},
	ErrInvalidState: {ErrInvalidState, "invalid state %s"},
}

// Error is the quartz error type.  All errors returned by quartz code
// carry an error code so that callers can classify without string matching.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) Succeeded() bool {
	return e.code < OkMax
}

func newError(code uint16, args ...any) *Error {
	var err *Error
	item, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Errorf("not exist MOErrorCode: %d", code))
	}
	if len(args) == 0 {
		err = &Error{
			code:    code,
			message: item.errorMsgOrFmt,
		}
	} else {
		err = &Error{
			code:    code,
			message: fmt.Sprintf(item.errorMsgOrFmt, args...),
		}
	}
	return err
}

// IsMoErrCode returns true if the error is a moerr carrying the given code.
func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}
	me, ok := e.(*Error)
	if !ok {
		return false
	}
	return me.code == rc
}

func NewInternalErrorNoCtx(msg string) *Error {
	return newError(ErrInternal, msg)
}

func NewInternalErrorNoCtxf(format string, args ...any) *Error {
	return newError(ErrInternal, fmt.Sprintf(format, args...))
}

func NewNYINoCtx(msg string) *Error {
	return newError(ErrNYI, msg)
}

func NewOOMNoCtx() *Error {
	return newError(ErrOOM)
}

func NewOutOfRangeNoCtx(typ string, msg string) *Error {
	return newError(ErrOutOfRange, typ+" "+msg)
}

func NewBadConfigNoCtx(msg string) *Error {
	return newError(ErrBadConfig, msg)
}

func NewInvalidInputNoCtx(msg string) *Error {
	return newError(ErrInvalidInput, msg)
}

func NewInvalidInputNoCtxf(format string, args ...any) *Error {
	return newError(ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NewInvalidArgNoCtx(arg string, val any) *Error {
	return newError(ErrInvalidArg, arg, fmt.Sprintf("%v", val))
}

func NewInvalidStateNoCtx(msg string) *Error {
	return newError(ErrInvalidState, msg)
}

func NewInvalidStateNoCtxf(format string, args ...any) *Error {
	return newError(ErrInvalidState, fmt.Sprintf(format, args...))
}
