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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	err := NewInvalidInputNoCtxf("scratch buffer too small: %d", 42)
	require.Equal(t, ErrInvalidInput, err.ErrorCode())
	require.Contains(t, err.Error(), "scratch buffer too small: 42")
	require.False(t, err.Succeeded())
}

func TestIsMoErrCode(t *testing.T) {
	require.True(t, IsMoErrCode(nil, Ok))
	require.False(t, IsMoErrCode(nil, ErrInternal))
	require.True(t, IsMoErrCode(NewInternalErrorNoCtx("boom"), ErrInternal))
	require.False(t, IsMoErrCode(NewInternalErrorNoCtx("boom"), ErrInvalidState))
	require.False(t, IsMoErrCode(errors.New("plain"), ErrInternal))
}

func TestNewInvalidState(t *testing.T) {
	err := NewInvalidStateNoCtxf("dictionary chain exceeded %d hops", 4)
	require.True(t, IsMoErrCode(err, ErrInvalidState))
	require.Contains(t, err.Error(), "chain exceeded 4 hops")
}

func TestUnknownCodePanics(t *testing.T) {
	require.Panics(t, func() {
		newError(ErrEnd)
	})
}
