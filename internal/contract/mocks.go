package contract

import (
	"github.com/huangsam/concord/schema"
	"github.com/stretchr/testify/mock"
)

// MockSourceReader is a testify mock of SourceReader.
type MockSourceReader struct {
	mock.Mock
}

var _ SourceReader = &MockSourceReader{} // Compile-time check

// ReadTable implements the SourceReader interface.
func (m *MockSourceReader) ReadTable(path string) (schema.RawTable, error) {
	ret := m.Called(path)
	table, _ := ret.Get(0).(schema.RawTable)
	return table, ret.Error(1)
}

// MockReportWriter is a testify mock of ReportWriter.
type MockReportWriter struct {
	mock.Mock
}

var _ ReportWriter = &MockReportWriter{} // Compile-time check

// WriteReports implements the ReportWriter interface.
func (m *MockReportWriter) WriteReports(result *schema.AggregateResult, cfg *Config) ([]string, error) {
	ret := m.Called(result, cfg)
	paths, _ := ret.Get(0).([]string)
	return paths, ret.Error(1)
}

// PrintTable implements the ReportWriter interface.
func (m *MockReportWriter) PrintTable(result *schema.AggregateResult, cfg *Config) error {
	ret := m.Called(result, cfg)
	return ret.Error(0)
}
