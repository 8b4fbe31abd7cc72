// Copyright 2025 Brandloom Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/brandloom/brandrag/core"
)

// MarshalContentVector serializes a ContentVector to bytes.
func MarshalContentVector(vector *core.ContentVector) []byte {
	buf := make([]byte, core.ContentVectorMUS.Size(*vector))
	core.ContentVectorMUS.Marshal(*vector, buf)
	return buf
}

// UnmarshalContentVector deserializes a ContentVector from bytes.
func UnmarshalContentVector(data []byte) (*core.ContentVector, error) {
	vector, _, err := core.ContentVectorMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &vector, nil
}

// MarshalContentRecord serializes a ContentRecord to bytes.
func MarshalContentRecord(record *core.ContentRecord) []byte {
	buf := make([]byte, core.ContentRecordMUS.Size(*record))
	core.ContentRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalContentRecord deserializes a ContentRecord from bytes.
func UnmarshalContentRecord(data []byte) (*core.ContentRecord, error) {
	record, _, err := core.ContentRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalJob serializes a VectorizationJob to bytes.
func MarshalJob(job *core.VectorizationJob) []byte {
	buf := make([]byte, core.VectorizationJobMUS.Size(*job))
	core.VectorizationJobMUS.Marshal(*job, buf)
	return buf
}

// UnmarshalJob deserializes a VectorizationJob from bytes.
func UnmarshalJob(data []byte) (*core.VectorizationJob, error) {
	job, _, err := core.VectorizationJobMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
