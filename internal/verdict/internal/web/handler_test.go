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

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	saveResult  domain.Verdict
	detail      domain.Verdict
	detailErr   error
	voteErr     error
	withdrawErr error
	status      service.VoteStatus
	lastVote    domain.Vote
}

func (f *fakeService) Save(_ context.Context, persons domain.Persons, result domain.Result) (domain.Verdict, error) {
	return f.saveResult, nil
}

func (f *fakeService) Detail(_ context.Context, id int64) (domain.Verdict, error) {
	return f.detail, f.detailErr
}

func (f *fakeService) History(_ context.Context, page, limit int, search string) ([]domain.Verdict, int64, error) {
	return []domain.Verdict{f.detail}, 1, nil
}

func (f *fakeService) RandomExcluding(_ context.Context, _ []int64) (domain.Verdict, error) {
	return f.detail, nil
}

func (f *fakeService) Vote(_ context.Context, vote domain.Vote) error {
	f.lastVote = vote
	return f.voteErr
}

func (f *fakeService) WithdrawVote(_ context.Context, _ int64, _ string) error {
	return f.withdrawErr
}

func (f *fakeService) VoteStatus(_ context.Context, _ int64, _ string) (service.VoteStatus, error) {
	return f.status, nil
}

func newVerdictServer(svc service.VerdictService) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)
	return server
}

func doJSON(t *testing.T, server *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func validSaveReq() SaveVerdictReq {
	return SaveVerdictReq{
		FormData: domain.Persons{
			Person1: domain.Party{Name: "小明", Story: "他总是玩游戏", Complaint: "不陪我"},
			Person2: domain.Party{Name: "小红", Story: "她总是生气", Complaint: "不理解我"},
		},
		Result: domain.Result{Title: "游戏引发的冷战", Verdict: "判决和解"},
	}
}

func TestHandler_Save(t *testing.T) {
	t.Parallel()
	svc := &fakeService{saveResult: domain.Verdict{Id: 7, CaseId: "CP-123"}}
	server := newVerdictServer(svc)

	recorder := doJSON(t, server, http.MethodPost, "/verdicts", validSaveReq())
	assert.Equal(t, http.StatusOK, recorder.Code)
	var resp struct {
		Data SaveVerdictResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Data.VerdictId)
	assert.Equal(t, "CP-123", resp.Data.CaseId)
}

func TestHandler_SaveInvalid(t *testing.T) {
	t.Parallel()
	server := newVerdictServer(&fakeService{})
	req := validSaveReq()
	req.FormData.Person1.Name = "   "
	recorder := doJSON(t, server, http.MethodPost, "/verdicts", req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_Vote(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		req      VoteReq
		svc      *fakeService
		wantCode int
	}{
		{
			name:     "正常投票",
			req:      VoteReq{VoteType: "like", DeviceFingerprint: "fp-1"},
			svc:      &fakeService{},
			wantCode: http.StatusOK,
		},
		{
			name:     "投票类型不合法",
			req:      VoteReq{VoteType: "love", DeviceFingerprint: "fp-1"},
			svc:      &fakeService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "缺少设备指纹",
			req:      VoteReq{VoteType: "like"},
			svc:      &fakeService{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "重复投票",
			req:      VoteReq{VoteType: "dislike", DeviceFingerprint: "fp-1"},
			svc:      &fakeService{voteErr: service.ErrDuplicateVote},
			wantCode: http.StatusConflict,
		},
		{
			name:     "判决不存在",
			req:      VoteReq{VoteType: "like", DeviceFingerprint: "fp-1"},
			svc:      &fakeService{voteErr: service.ErrVerdictNotFound},
			wantCode: http.StatusNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newVerdictServer(tc.svc)
			recorder := doJSON(t, server, http.MethodPost, "/verdicts/1/vote", tc.req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestHandler_VoteStatus(t *testing.T) {
	t.Parallel()
	svc := &fakeService{status: service.VoteStatus{Voted: true, VoteType: "like"}}
	server := newVerdictServer(svc)

	recorder := doJSON(t, server, http.MethodGet, "/verdicts/1/vote?deviceFingerprint=fp-1", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var resp struct {
		Data VoteStatusResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Voted)
	assert.Equal(t, "like", resp.Data.VoteType)

	// 不带指纹直接 400
	recorder = doJSON(t, server, http.MethodGet, "/verdicts/1/vote", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_WithdrawNotVoted(t *testing.T) {
	t.Parallel()
	server := newVerdictServer(&fakeService{withdrawErr: service.ErrVoteNotFound})
	recorder := doJSON(t, server, http.MethodDelete, "/verdicts/1/vote?deviceFingerprint=fp-1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_DetailNotFound(t *testing.T) {
	t.Parallel()
	server := newVerdictServer(&fakeService{detailErr: service.ErrVerdictNotFound})
	recorder := doJSON(t, server, http.MethodGet, "/verdicts/99", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// id 不是数字
	recorder = doJSON(t, server, http.MethodGet, "/verdicts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_History(t *testing.T) {
	t.Parallel()
	svc := &fakeService{detail: domain.Verdict{
		Id: 1, CaseId: "CP-1", Title: "游戏引发的冷战",
		Likes: 3, Dislikes: 1, Ctime: 1700000000000,
	}}
	server := newVerdictServer(svc)
	recorder := doJSON(t, server, http.MethodGet, "/verdicts/history?page=1&limit=10", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var resp struct {
		Data HistoryResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.Total)
	require.Len(t, resp.Data.Verdicts, 1)
	assert.Equal(t, "CP-1", resp.Data.Verdicts[0].CaseId)
	assert.Equal(t, int64(3), resp.Data.Verdicts[0].Votes.Likes)
}
