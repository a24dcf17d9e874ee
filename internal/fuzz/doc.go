// Package fuzztests houses Go fuzz harnesses for the classifier and the
// translation pipeline. Its goal is to guard the coverage property (token
// texts concatenate back to the input) and to catch panics on arbitrary
// bytes.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер,
// таблицу подстановок и принтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
