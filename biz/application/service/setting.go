package service

import (
	"context"
	"errors"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/application/dto/basic"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/setting"
	"paper-grade/biz/infrastructure/util"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type ISettingService interface {
	GetPrompts(ctx context.Context, req *assistant.GetPromptsReq) (*assistant.GetPromptsResp, error)
	UpdatePrompt(ctx context.Context, req *assistant.UpdatePromptReq) (*basic.Response, error)
}

type SettingService struct {
	SettingMapper setting.IMongoMapper
}

var SettingServiceSet = wire.NewSet(
	wire.Struct(new(SettingService), "*"),
	wire.Bind(new(ISettingService), new(*SettingService)),
)

func (s *SettingService) GetPrompts(ctx context.Context, _ *assistant.GetPromptsReq) (*assistant.GetPromptsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	prompts, err := s.SettingMapper.FindAll(ctx)
	if err != nil {
		log.Error("list prompts failed: %v", err)
		return nil, consts.ErrNotFound
	}

	infos := make([]*assistant.PromptInfo, 0, len(prompts))
	for _, p := range prompts {
		infos = append(infos, &assistant.PromptInfo{
			PromptType: p.PromptType,
			PromptText: p.PromptText,
			UpdateTime: p.UpdateTime.Unix(),
		})
	}
	return &assistant.GetPromptsResp{Prompts: infos}, nil
}

// UpdatePrompt replaces the text of one prompt type. Unknown types are
// rejected so a typo cannot orphan a prompt.
func (s *SettingService) UpdatePrompt(ctx context.Context, req *assistant.UpdatePromptReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	switch req.PromptType {
	case consts.PromptOCR, consts.PromptGrading, consts.PromptRubricExtraction,
		consts.PromptTestExtraction, consts.PromptAnswerExtraction:
	default:
		return nil, consts.ErrInvalidParams
	}

	p, err := s.SettingMapper.FindByType(ctx, req.PromptType)
	if errors.Is(err, consts.ErrNotFound) {
		p = &setting.Prompt{PromptType: req.PromptType, PromptText: req.PromptText}
		if err = s.SettingMapper.Insert(ctx, p); err != nil {
			return nil, consts.ErrUpdate
		}
		return util.Succeed("prompt updated")
	}
	if err != nil {
		return nil, consts.ErrUpdate
	}

	p.PromptText = req.PromptText
	if err = s.SettingMapper.Update(ctx, p); err != nil {
		return nil, consts.ErrUpdate
	}
	return util.Succeed("prompt updated")
}
