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

package urlencoded

import (
	"github.com/aacfactory/errors"
	"net/url"
)

// Decode reverses percent escapes and '+'-as-space in a query component.
// It fails when the token contains a malformed escape, such as a '%' that is
// not followed by two hex digits or an incomplete trailing '%'.
func Decode(token string) (v string, err error) {
	unescaped, unescapeErr := url.QueryUnescape(token)
	if unescapeErr != nil {
		err = errors.Warning("urlencoded: decode failed").WithCause(unescapeErr).WithMeta("token", token)
		return
	}
	v = unescaped
	return
}

// Encode percent-encodes a query component, the inverse of Decode.
func Encode(token string) (v string) {
	v = url.QueryEscape(token)
	return
}
