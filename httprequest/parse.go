/*
 * Copyright 2024 Olezha
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * 	http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package httprequest

import (
	"github.com/Olezha/fred-staging/commons/urlencoded"
	"github.com/aacfactory/errors"
	"strings"
)

// parseQuery builds the parameter store from a raw query string. Tokens are
// separated by '&', empty segments between separators produce no entry. Only
// the first '=' of a token separates name from value, later ones stay in the
// value. A token without '=' is a bare name with an empty value, a trailing
// '=' is dropped. A malformed percent escape in either name or value aborts
// the whole parse, no partial store is returned.
func parseQuery(rawQuery string, decode bool) (params Params, err error) {
	if rawQuery == "" {
		return
	}
	for _, token := range strings.Split(rawQuery, "&") {
		if token == "" {
			continue
		}
		name := token
		value := ""
		idx := strings.IndexByte(token, '=')
		if idx >= 0 {
			name = token[0:idx]
			value = token[idx+1:]
		}
		if decode {
			decodedName, nameErr := urlencoded.Decode(name)
			if nameErr != nil {
				err = errors.Warning("httprequest: decode request parameter failed").WithCause(nameErr).WithMeta("name", name).WithMeta("value", value)
				return
			}
			decodedValue, valueErr := urlencoded.Decode(value)
			if valueErr != nil {
				err = errors.Warning("httprequest: decode request parameter failed").WithCause(valueErr).WithMeta("name", name).WithMeta("value", value)
				return
			}
			name = decodedName
			value = decodedValue
		}
		params.add(name, value)
	}
	return
}
