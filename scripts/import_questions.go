// 手动批量导入题库脚本
//
// 教师也可以通过 /api/teacher/questions/import 接口上传 CSV，
// 此脚本用于首次部署或运维侧一次性导入大量题目。
//
// 用法: go run scripts/import_questions.go -file questions.csv -creator 1
package main

import (
	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/repository"
	"edu_hub_backend/internal/service"
	"edu_hub_backend/pkg/database"
	"edu_hub_backend/pkg/logger"
	"flag"
	"log"
	"os"
)

func main() {
	file := flag.String("file", "", "CSV 文件路径")
	creator := flag.Uint("creator", 0, "创建者用户ID")
	flag.Parse()

	if *file == "" || *creator == 0 {
		log.Fatal("用法: go run scripts/import_questions.go -file questions.csv -creator <userID>")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("无法打开 CSV 文件: %v", err)
	}
	defer f.Close()

	questionRepo := repository.NewQuestionRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	questionService := service.NewQuestionService(questionRepo, subjectRepo)

	result, err := questionService.ImportCSV(f, uint(*creator))
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}

	log.Printf("导入完成: 成功 %d 条, 跳过 %d 条", result.Imported, result.Skipped)
	for _, msg := range result.Errors {
		log.Printf("  跳过原因: %s", msg)
	}
}
