package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/pkg/util"

	"github.com/cloudwego/hertz/pkg/app"
	"gorm.io/gorm"
)

type RegisterService struct {
	Service
}

func NewRegisterService(ctx context.Context, c *app.RequestContext) *RegisterService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &RegisterService{
		Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// Register 统一注册入口，根据身份类型分发
func (s *RegisterService) Register(req *api.RegisterRequest) (*api.RegisterResponse, error) {
	switch req.Identity {
	case "volunteer":
		return s.RegisterVolunteer(req)
	case "organization":
		return s.RegisterOrganization(req)
	default:
		return nil, errors.New("不支持的注册身份类型")
	}
}

// RegisterVolunteer 志愿者注册
func (s *RegisterService) RegisterVolunteer(req *api.RegisterRequest) (*api.RegisterResponse, error) {
	// 验证必填字段
	if err := s.validateCommonRequest(req); err != nil {
		log.Warn("志愿者注册验证失败: %v", err)
		return nil, err
	}

	// 处理手机号：生成哈希和加密值
	mobilePair, err := util.ProcessSensitiveField(req.Phone)
	if err != nil {
		log.Error("志愿者注册 - 手机号处理失败: %v", err)
		return nil, errors.New("手机号处理失败")
	}

	if err := s.checkUniqueness(mobilePair.Hash, req.Email); err != nil {
		log.Warn("志愿者注册失败: %v", err)
		return nil, err
	}

	// 密码加密
	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		log.Error("志愿者注册 - 密码加密失败: %v", err)
		return nil, errors.New("密码加密失败")
	}

	var account *model.SysAccount
	err = s.repo.DB.Transaction(func(tx *gorm.DB) error {
		// 创建系统账户
		account = &model.SysAccount{
			Username:     req.UserName,
			Mobile:       mobilePair.Encrypted,
			MobileHash:   mobilePair.Hash,
			Email:        req.Email,
			Password:     hashedPassword,
			IdentityType: model.IdentityVolunteer,
			Status:       model.AccountStatusNormal,
			CreatedAt:    time.Now(),
		}
		if err := s.repo.CreateAccount(tx, account); err != nil {
			log.Error("志愿者注册 - 创建系统账户失败: %v", err)
			return err
		}

		// 创建志愿者档案，初始等级由积分表解析（0分即青铜）
		volunteer := &model.Volunteer{
			AccountID:   account.ID,
			RealName:    req.Name,
			Status:      model.VolunteerStatusActive,
			Skills:      model.EncodeSkills(req.Skills),
			City:        req.City,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			TotalPoints: 0,
			Level:       model.LevelForPoints(0),
			Reputation:  50, // 新人初始信誉
			CreatedAt:   time.Now(),
		}
		if err := s.repo.CreateVolunteer(tx, volunteer); err != nil {
			log.Error("志愿者注册 - 创建志愿者档案失败: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		log.Error("志愿者注册 - 事务执行失败: %v", err)
		return nil, err
	}

	log.Info("志愿者注册成功: 账户ID=%d, 姓名=%s, 手机号=%s", account.ID, req.Name, util.GetMobileMask(req.Phone))
	return &api.RegisterResponse{AccountID: account.ID}, nil
}

// RegisterOrganization 组织注册
func (s *RegisterService) RegisterOrganization(req *api.RegisterRequest) (*api.RegisterResponse, error) {
	// 验证必填字段
	if err := s.validateCommonRequest(req); err != nil {
		log.Warn("组织注册验证失败: %v", err)
		return nil, err
	}
	if req.OrganizationName == "" {
		return nil, errors.New("组织名称不能为空")
	}

	// 处理手机号：生成哈希和加密值
	mobilePair, err := util.ProcessSensitiveField(req.Phone)
	if err != nil {
		log.Error("组织注册 - 手机号处理失败: %v", err)
		return nil, errors.New("手机号处理失败")
	}

	if err := s.checkUniqueness(mobilePair.Hash, req.Email); err != nil {
		log.Warn("组织注册失败: %v", err)
		return nil, err
	}

	// 密码加密
	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		log.Error("组织注册 - 密码加密失败: %v", err)
		return nil, errors.New("密码加密失败")
	}

	var account *model.SysAccount
	err = s.repo.DB.Transaction(func(tx *gorm.DB) error {
		// 创建系统账户
		account = &model.SysAccount{
			Username:     req.OrganizationName,
			Mobile:       mobilePair.Encrypted,
			MobileHash:   mobilePair.Hash,
			Email:        req.Email,
			Password:     hashedPassword,
			IdentityType: model.IdentityOrganization,
			Status:       model.AccountStatusNormal,
			CreatedAt:    time.Now(),
		}
		if err := s.repo.CreateAccount(tx, account); err != nil {
			log.Error("组织注册 - 创建系统账户失败: %v", err)
			return err
		}

		// 创建组织档案
		org := &model.Organization{
			AccountID:     account.ID,
			OrgName:       req.OrganizationName,
			ContactPerson: req.Name,
			ContactPhone:  mobilePair.Encrypted, // 组织联系手机号也使用加密存储
			CreatedAt:     time.Now(),
		}
		if err := s.repo.CreateOrganization(tx, org); err != nil {
			log.Error("组织注册 - 创建组织档案失败: %v", err)
			return err
		}

		// 注册账户自动成为该组织的正式成员
		now := time.Now()
		member := &model.OrgMember{
			OrgID:     org.ID,
			AccountID: account.ID,
			Status:    model.MemberStatusActive,
			JoinedAt:  &now,
		}
		if err := s.repo.CreateOrgMember(tx, member); err != nil {
			log.Error("组织注册 - 创建成员关系失败: %v", err)
			return err
		}

		return nil
	})

	if err != nil {
		log.Error("组织注册 - 事务执行失败: %v", err)
		return nil, err
	}
	log.Info("组织注册成功: 账户ID=%d, 组织名称=%s, 联系人=%s", account.ID, req.OrganizationName, req.Name)
	return &api.RegisterResponse{AccountID: account.ID}, nil
}

// validateCommonRequest 验证注册公共字段
func (s *RegisterService) validateCommonRequest(req *api.RegisterRequest) error {
	if req.Name == "" {
		return errors.New("姓名不能为空")
	}

	if req.Phone == "" {
		return errors.New("手机号不能为空")
	}
	if !s.isValidMobile(req.Phone) {
		return errors.New("手机号格式不正确")
	}

	if req.Email == "" {
		return errors.New("邮箱不能为空")
	}
	if !s.isValidEmail(req.Email) {
		return errors.New("邮箱格式不正确")
	}

	if req.Password == "" {
		return errors.New("密码不能为空")
	}
	if err := util.ValidatePasswordStrength(req.Password); err != nil {
		return err
	}

	return nil
}

// checkUniqueness 检查手机号与邮箱是否已被占用
func (s *RegisterService) checkUniqueness(mobileHash, email string) error {
	exists, err := s.repo.CheckMobileExists(s.repo.DB, mobileHash)
	if err != nil {
		log.Error("检查手机号是否存在失败: %v", err)
		return errors.New("检查手机号失败")
	}
	if exists {
		return errors.New("手机号已存在")
	}

	exists, err = s.repo.CheckEmailExists(s.repo.DB, email)
	if err != nil {
		log.Error("检查邮箱是否存在失败: %v", err)
		return errors.New("检查邮箱失败")
	}
	if exists {
		return errors.New("邮箱已存在")
	}
	return nil
}

// isValidMobile 验证手机号格式
func (s *RegisterService) isValidMobile(mobile string) bool {
	// 简单的手机号格式验证，支持11位数字
	matched, _ := regexp.MatchString(`^1[3-9]\d{9}$`, mobile)
	return matched
}

// isValidEmail 验证邮箱格式
func (s *RegisterService) isValidEmail(email string) bool {
	// 简单的邮箱格式验证
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`, email)
	return matched
}
