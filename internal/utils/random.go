package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

var roles = []domain.Role{
	domain.RoleNormalAssistant,
	domain.RoleSeniorAssistant,
	domain.RoleBlackCore,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

// 把当天 0 点起的分钟数渲染成 12 小时制时刻, 比如 470 -> "7:50 AM"
func formatClockMinute(m int) string {
	hour24 := m / 60
	minute := m % 60

	meridiem := "AM"
	if hour24 >= 12 {
		meridiem = "PM"
	}

	hour12 := hour24 % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem)
}

// GenerateRandomShiftTime 生成随机班次时间字符串,
// 约一半是白班, 一半是跨夜的夜班, 时长 8~9 小时
func GenerateRandomShiftTime() string {
	var startMinute int
	if rand.Intn(2) == 0 {
		// 白班, 早 5 点到 9 点之间开始
		startMinute = (5 + rand.Intn(5)) * 60
	} else {
		// 夜班, 晚 20 点到 23 点之间开始
		startMinute = (20 + rand.Intn(4)) * 60
	}
	startMinute += rand.Intn(2) * 30

	duration := 480 + rand.Intn(4)*15
	endMinute := (startMinute + duration) % 1440

	return formatClockMinute(startMinute) + " - " + formatClockMinute(endMinute)
}

func GenerateRandomWorker(password string, emailDomainName string) (*domain.Worker, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	worker := &domain.Worker{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
		ShiftTime:    GenerateRandomShiftTime(),
	}

	return worker, nil
}

var taskTitles = []string{
	"整理值班室耗材清单",
	"更新宿舍网络报修工单",
	"核对本月考勤异常记录",
	"检查打印机并补充纸张",
	"回访上周未解决的报障",
}

// GenerateRandomTask 生成随机任务, 截止时间落在未来两天内
func GenerateRandomTask(workerID int64) *domain.Task {
	return &domain.Task{
		WorkerID: workerID,
		Title:    taskTitles[rand.Intn(len(taskTitles))],
		DueAt:    time.Now().Add(time.Duration(rand.Intn(48)+1) * time.Hour),
	}
}
