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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/woofcourt/internal/test"
	testioc "github.com/ecodeclub/woofcourt/internal/test/ioc"
	"github.com/ecodeclub/woofcourt/internal/verdict"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository/dao"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const fp = "device-fp-2051"

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.VerdictDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	node, err := snowflake.NewNode(1)
	require.NoError(s.T(), err)
	mou, err := verdict.InitModule(s.db, testioc.InitCache(), node)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mou.Hdl.PublicRoutes(server.Engine)
	s.server = server
	s.dao = dao.NewGORMVerdictDAO(s.db)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `verdicts`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `votes`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `verdicts`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `votes`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSaveAndDetail() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/verdicts",
		iox.NewJSONReader(web.SaveVerdictReq{
			FormData: testPersons(),
			Result:   testResult("谁先动手谁理亏"),
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SaveVerdictResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.True(t, resp.VerdictId > 0)
	assert.True(t, strings.HasPrefix(resp.CaseId, "CP-"))

	req, err = http.NewRequest(http.MethodGet,
		fmt.Sprintf("/verdicts/%d", resp.VerdictId), nil)
	require.NoError(t, err)
	detail := test.NewJSONResponseRecorder[web.Verdict]()
	s.server.ServeHTTP(detail, req)
	require.Equal(t, 200, detail.Code)
	got := detail.MustScan().Data
	assert.Equal(t, resp.CaseId, got.CaseId)
	assert.Equal(t, "谁先动手谁理亏", got.Title)
	assert.Equal(t, "旺财", got.Persons.Person1.Name)
}

func (s *HandlerTestSuite) TestVoteFlow() {
	t := s.T()
	id := s.createVerdict(t, "CP-1001", "遛狗纠纷")

	// 第一次点赞成功
	s.castVote(t, id, domain.VoteTypeLike, 200)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	entity, err := s.dao.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entity.LikeCnt)

	// 重复投票 409
	s.castVote(t, id, domain.VoteTypeLike, 409)

	// 查询投票状态
	req, err := http.NewRequest(http.MethodGet,
		fmt.Sprintf("/verdicts/%d/vote?deviceFingerprint=%s", id, fp), nil)
	require.NoError(t, err)
	status := test.NewJSONResponseRecorder[web.VoteStatusResp]()
	s.server.ServeHTTP(status, req)
	require.Equal(t, 200, status.Code)
	assert.Equal(t, web.VoteStatusResp{
		Voted:    true,
		VoteType: domain.VoteTypeLike,
	}, status.MustScan().Data)

	// 撤回后计数归零
	s.withdrawVote(t, id, 200)
	entity, err = s.dao.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), entity.LikeCnt)

	// 再撤回 404
	s.withdrawVote(t, id, 404)
}

func (s *HandlerTestSuite) TestHistorySearch() {
	t := s.T()
	s.createVerdict(t, "CP-2001", "遛狗纠纷")
	s.createVerdict(t, "CP-2002", "家务分工")
	s.createVerdict(t, "CP-2003", "遛狗时间")

	req, err := http.NewRequest(http.MethodGet,
		"/verdicts/history?search=遛狗", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.HistoryResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, int64(2), resp.Total)
	assert.Len(t, resp.Verdicts, 2)

	// 当事人名字也参与搜索
	req, err = http.NewRequest(http.MethodGet,
		"/verdicts/history?search=旺财", nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.HistoryResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, int64(3), recorder.MustScan().Data.Total)
}

func (s *HandlerTestSuite) castVote(t *testing.T, id int64, voteType string, wantCode int) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("/verdicts/%d/vote", id),
		iox.NewJSONReader(web.VoteReq{
			VoteType:          voteType,
			DeviceFingerprint: fp,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, wantCode, recorder.Code)
}

func (s *HandlerTestSuite) withdrawVote(t *testing.T, id int64, wantCode int) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("/verdicts/%d/vote?deviceFingerprint=%s", id, fp), nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, wantCode, recorder.Code)
}

func (s *HandlerTestSuite) createVerdict(t *testing.T, caseId, title string) int64 {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	id, err := s.dao.Create(ctx, dao.Verdict{
		CaseId:  caseId,
		Title:   title,
		Summary: "测试摘要",
		Persons: sqlx.JsonColumn[domain.Persons]{Val: testPersons(), Valid: true},
		Result:  sqlx.JsonColumn[domain.Result]{Val: testResult(title), Valid: true},
	})
	require.NoError(t, err)
	return id
}

func testPersons() domain.Persons {
	return domain.Persons{
		Person1: domain.Party{
			Name:      "旺财",
			Story:     "他天天加班不遛狗",
			Complaint: "希望他多花时间陪狗",
		},
		Person2: domain.Party{
			Name:      "小白",
			Story:     "最近项目太忙了",
			Complaint: "希望她体谅一下",
		},
	}
}

func testResult(title string) domain.Result {
	return domain.Result{
		Title:   title,
		Summary: "测试摘要",
		Verdict: "本庭判决双方各退一步",
		FaultPercentage: domain.FaultPercentage{
			Person1: 40,
			Person2: 60,
		},
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
