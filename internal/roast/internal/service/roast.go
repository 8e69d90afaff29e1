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

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/event"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/repository"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./roast.go -destination=../../mocks/roast.mock.go -package=roastmocks Service
type Service interface {
	Roast(ctx context.Context, req domain.RoastRequest) (domain.Roast, error)
	// Find 按照对外的 sn 查询
	Find(ctx context.Context, sn string) (domain.Roast, error)
	Personas() []domain.Persona
	FindPersona(name string) (domain.Persona, bool)
}

type roastService struct {
	cfg        Config
	registry   *PersonaRegistry
	moderation ModerationGate
	judge      JudgeInvoker
	repo       repository.RoastRepository
	producer   event.RoastEventProducer
	logger     *elog.Component
}

func NewService(cfg Config,
	registry *PersonaRegistry,
	moderation ModerationGate,
	judge JudgeInvoker,
	repo repository.RoastRepository,
	producer event.RoastEventProducer) Service {
	return &roastService{
		cfg:        cfg.WithDefaults(),
		registry:   registry,
		moderation: moderation,
		judge:      judge,
		repo:       repo,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *roastService) Personas() []domain.Persona {
	return s.registry.List()
}

func (s *roastService) FindPersona(name string) (domain.Persona, bool) {
	return s.registry.Find(name)
}

func (s *roastService) Find(ctx context.Context, sn string) (domain.Roast, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *roastService) Roast(ctx context.Context, req domain.RoastRequest) (domain.Roast, error) {
	if err := s.validate(req); err != nil {
		return domain.Roast{}, err
	}
	moderation := s.moderation.Check(ctx, req.Idea)
	if !moderation.Safe {
		return domain.Roast{}, ErrUnsafeContent
	}

	personas := s.selectPersonas(req.SelectedJudge)
	multi := len(personas) > 1
	judges := make([]domain.JudgeEntry, 0, len(personas))
	// 评委按顺序依次调用，任何一个失败都直接返回
	for _, p := range personas {
		tone := req.Tone
		if multi {
			tone = tone.Shift(p.ToneOffset)
		}
		prompt := BuildPrompt(PromptInput{
			Persona:     p,
			Idea:        req.Idea,
			Tone:        tone,
			Analysis:    req.AgentAnalysis,
			ProjectName: req.ProjectName,
		})
		res, err := s.judge.Invoke(ctx, p, prompt, req.Uid)
		if err != nil {
			return domain.Roast{}, fmt.Errorf("评委 %s 评审失败: %w", p.Name, err)
		}
		judges = append(judges, domain.JudgeEntry{Name: p.Name, Response: res})
	}

	agg, err := Aggregate(judges)
	if err != nil {
		return domain.Roast{}, err
	}
	roast, err := s.repo.Create(ctx, domain.Roast{
		SN:              uuid.NewString(),
		Uid:             req.Uid,
		ProjectName:     req.ProjectName,
		Idea:            req.Idea,
		Tone:            req.Tone,
		AggregateResult: agg,
		ErrorLog:        s.errorLog(moderation),
	})
	if err != nil {
		return domain.Roast{}, err
	}
	s.publish(ctx, roast)
	return roast, nil
}

// errorLog 记录放行但是需要排查的问题
func (s *roastService) errorLog(moderation domain.ModerationResult) map[string]any {
	if moderation.Err == nil {
		return nil
	}
	return map[string]any{"moderation": moderation.Err.Error()}
}

func (s *roastService) validate(req domain.RoastRequest) error {
	if strings.TrimSpace(req.ProjectName) == "" {
		return ErrEmptyProjectName
	}
	if strings.TrimSpace(req.Idea) == "" {
		return ErrEmptyIdea
	}
	if utf8.RuneCountInString(req.Idea) > s.cfg.MaxIdeaLength {
		return fmt.Errorf("%w: 最多 %d 个字符", ErrIdeaTooLong, s.cfg.MaxIdeaLength)
	}
	if !req.Tone.Valid() {
		return fmt.Errorf("%w: humor=%v sarcasm=%v", ErrInvalidTone, req.Tone.Humor, req.Tone.Sarcasm)
	}
	return nil
}

func (s *roastService) selectPersonas(selected string) []domain.Persona {
	if s.cfg.MultiJudge {
		if len(s.cfg.Judges) == 0 {
			return s.registry.List()
		}
		res := make([]domain.Persona, 0, len(s.cfg.Judges))
		for _, name := range s.cfg.Judges {
			p, ok := s.registry.Find(name)
			if !ok {
				s.logger.Warn("配置的评委不存在，跳过", elog.String("judge", name))
				continue
			}
			res = append(res, p)
		}
		if len(res) == 0 {
			return s.registry.List()
		}
		return res
	}
	if p, ok := s.registry.Find(selected); ok {
		return []domain.Persona{p}
	}
	if p, ok := s.registry.Find(s.cfg.DefaultJudge); ok {
		return []domain.Persona{p}
	}
	return s.registry.List()[:1]
}

func (s *roastService) publish(ctx context.Context, roast domain.Roast) {
	scores := roast.AggregatedScores
	err := s.producer.Produce(ctx, event.RoastCreatedEvent{
		SN:              roast.SN,
		ProjectName:     roast.ProjectName,
		Idea:            roast.Idea,
		Originality:     scores.Originality,
		Feasibility:     scores.Feasibility,
		WowFactor:       scores.WowFactor,
		MarketPotential: scores.MarketPotential,
		Verdict:         roast.FinalVerdict.String(),
		Ctime:           roast.Ctime.UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送吐槽完成事件失败",
			elog.String("sn", roast.SN),
			elog.FieldErr(err))
	}
}
