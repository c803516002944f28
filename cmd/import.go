/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const ReplaceFlag = "replace"

var replace bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import csvFile",
	Short: "将历史数据文件导入Mysql数据库",
	Long: "读取与数据文件格式相同的CSV文件，保存到mysql-host指定的数据库中。\n" +
		"导入的是原始数据，清洗在读取时进行。\n",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("参数错误")
		}
		if sourceConfig().MysqlHost == "" {
			return fmt.Errorf("必须指定%s", FlagMysqlHost)
		}
		_, err := os.Stat(args[0])
		if os.IsNotExist(err) {
			return fmt.Errorf("数据文件不存在")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config := sourceConfig()
		if err := config.Complete(); err != nil {
			return err
		}
		dao, err := datasource.NewDao(config.DSN())
		if err != nil {
			return err
		}

		fin, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "打开数据文件错误")
		}
		defer func() {
			_ = fin.Close()
		}()
		stat, err := fin.Stat()
		if err != nil {
			return errors.Wrap(err, "读取文件信息错误")
		}
		counter := &utils.ReadCounter{Reader: fin}

		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-done:
					return
				case <-time.After(time.Second):
					fmt.Printf("\r读取进度：%8.2f%% (%d/%d)", float32(counter.Count)/float32(stat.Size())*100, counter.Count, stat.Size())
				}
			}
		}()
		df, err := datasource.ReadCsv(counter)
		close(done)
		if err != nil {
			return err
		}
		records := datasource.RecordsFromFrame(df)

		if replace {
			if err = dao.RemoveAllRecords(); err != nil {
				return err
			}
		}
		if err = dao.SaveAllRecords(records); err != nil {
			return err
		}
		fmt.Printf("\r导入完成，共%d条记录\n", len(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVarP(&replace, ReplaceFlag, "r", false,
		"若设置，则导入前删除数据库中已有的记录")
}
